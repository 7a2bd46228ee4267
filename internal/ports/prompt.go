package ports

// Prompter asks the operator questions on the terminal.
//
// Confirm blocks until the operator gives an unambiguous yes or no answer;
// there is no default and no timeout. Ask blocks until a non-empty line is
// entered.
type Prompter interface {
	Confirm(question string) (bool, error)
	Ask(question string) (string, error)
}
