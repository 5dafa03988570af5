package command

// UnrecognisedCommandError is returned when a line matches no command.
type UnrecognisedCommandError struct {
	Input string
}

func (e *UnrecognisedCommandError) Error() string {
	return "Unrecognised command: " + e.Input
}

// BadPlaceParametersError carries the text after "PLACE " when it does not
// read as x,y,direction. Err holds the grammar failure and is not part of the
// message.
type BadPlaceParametersError struct {
	Params string
	Err    error
}

func (e *BadPlaceParametersError) Error() string {
	return "Bad PLACE parameters: " + e.Params
}

func (e *BadPlaceParametersError) Unwrap() error {
	return e.Err
}
