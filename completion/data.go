// completion/data.go
package completion

// Option is used to store the completion data of a single option
type Option struct {
	Short       string // Short name without the dash, empty when the option has none
	Long        string // Long name without the dashes, empty when the option has none
	Description string // Human-readable description
	Arity       int    // Number of parameters the option consumes
	Group       string // Group gating the option, empty when always recognized
}

// Data is used to store the completion data for all options recognized in a given context
type Data struct {
	Options []Option
}

// Flags returns every spelling of the options, short forms first, in declaration order
func (d Data) Flags() []string {
	flags := make([]string, 0, len(d.Options)*2)
	for _, o := range d.Options {
		flags = append(flags, o.flags()...)
	}

	return flags
}

func (o Option) flags() []string {
	flags := make([]string, 0, 2)
	if o.Short != "" {
		flags = append(flags, "-"+o.Short)
	}
	if o.Long != "" {
		flags = append(flags, "--"+o.Long)
	}

	return flags
}

// takesParams is true when the word following the option is one of its parameters
func (o Option) takesParams() bool {
	return o.Arity > 0
}
