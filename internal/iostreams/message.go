package iostreams

import "fmt"

// PrintSuccess prints a success message to stderr with a checkmark icon.
func (ios *IOStreams) PrintSuccess(format string, args ...any) error {
	return ios.printIcon(ios.ColorScheme().SuccessIconWithColor, format, args...)
}

// PrintWarning prints a warning message to stderr with an exclamation icon.
func (ios *IOStreams) PrintWarning(format string, args ...any) error {
	return ios.printIcon(ios.ColorScheme().WarningIconWithColor, format, args...)
}

// PrintInfo prints an informational message to stderr with an info icon.
func (ios *IOStreams) PrintInfo(format string, args ...any) error {
	return ios.printIcon(ios.ColorScheme().InfoIconWithColor, format, args...)
}

// PrintFailure prints an error message to stderr with an X icon.
func (ios *IOStreams) PrintFailure(format string, args ...any) error {
	return ios.printIcon(ios.ColorScheme().FailureIconWithColor, format, args...)
}

func (ios *IOStreams) printIcon(icon func(string) string, format string, args ...any) error {
	_, err := fmt.Fprintln(ios.ErrOut, icon(fmt.Sprintf(format, args...)))
	return err
}
