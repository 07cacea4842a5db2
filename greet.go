package crafting

import "time"

// DefaultWho is greeted when no name is given on the command line.
const DefaultWho = "world"

func Greet(who string) string {
	return "Hello " + who
}

// FormatTime renders t in the C asctime layout.
func FormatTime(t time.Time) string {
	return t.Format(time.ANSIC)
}
