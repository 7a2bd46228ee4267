// Package config holds the run configuration for the hardening catalog.
package config

// PeriodicJob is one named scheduled task installed into root's crontab.
type PeriodicJob struct {
	Name     string `yaml:"name"`
	Schedule string `yaml:"schedule"`
	Command  string `yaml:"command"`
}

// Config collects every operator-tunable knob. All fields have working
// defaults; a config file only overrides what it names.
type Config struct {
	// TargetUser is the account to deprivilege and to configure the X
	// session for. When empty the operator is asked interactively.
	TargetUser string `yaml:"target_user"`

	// MirrorURL is the package and release mirror written to /etc/installurl.
	MirrorURL string `yaml:"mirror_url"`

	// FirmwareHost is the hostname blocked in /etc/hosts to suppress
	// firmware downloads.
	FirmwareHost string `yaml:"firmware_host"`

	// FirmwareRedirect is the loopback address the blocked host maps to.
	FirmwareRedirect string `yaml:"firmware_redirect"`

	// Packages are installed up front; later steps assume they exist.
	Packages []string `yaml:"packages"`

	// Sysctls are exact key=value lines appended to /etc/sysctl.conf and
	// applied live.
	Sysctls []string `yaml:"sysctls"`

	// USBDrivers are the kernel drivers disabled via /etc/bsd.re-config.
	USBDrivers []string `yaml:"usb_drivers"`

	// ImmutablePaths get the schg flag set on them.
	ImmutablePaths []string `yaml:"immutable_paths"`

	// PeriodicJobs are rendered into root's crontab.
	PeriodicJobs []PeriodicJob `yaml:"periodic_jobs"`

	// WindowManager is executed from the target user's ~/.xsession.
	WindowManager string `yaml:"window_manager"`
}

// Default returns the stock hardening configuration.
func Default() Config {
	return Config{
		MirrorURL:        "https://cdn.openbsd.org/pub/OpenBSD",
		FirmwareHost:     "firmware.openbsd.org",
		FirmwareRedirect: "127.0.0.9",
		Packages:         []string{"tor", "torsocks", "clamav"},
		Sysctls: []string{
			"kern.allowdt=0",
			"kern.allowkmem=0",
			"kern.audio.record=0",
			"kern.video.record=0",
			"kern.wxabort=1",
			"machdep.allowaperture=0",
			"net.inet.ip.forwarding=0",
		},
		USBDrivers:     []string{"usb", "xhci", "ehci", "uhci"},
		ImmutablePaths: []string{"/etc/rc", "/etc/rc.shutdown"},
		PeriodicJobs: []PeriodicJob{
			{Name: "clamav-scan", Schedule: "30 2 * * *", Command: "/usr/local/bin/clamscan -ri /home"},
			{Name: "freshclam-update", Schedule: "15 */6 * * *", Command: "/usr/local/bin/freshclam --quiet"},
			{Name: "syspatch-check", Schedule: "0 1 * * *", Command: "/usr/sbin/syspatch -c"},
		},
		WindowManager: "cwm",
	}
}
