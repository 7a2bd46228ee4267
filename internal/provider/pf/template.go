package pf

// Ruleset is the canonical deny-by-default pf ruleset the tool installs.
// Outbound traffic is allowed and kept stateful, inbound is blocked, and
// the loopback interface is skipped so local daemons (including the tor
// SOCKS listener) keep working.
const Ruleset = `# installed by lockdown
set skip on lo
set block-policy drop

block in log all
block out all

pass out on egress proto { tcp udp } from self to any modulate state
pass out on egress proto icmp from self to any keep state
`
