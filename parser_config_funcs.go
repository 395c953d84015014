package progopts

// NewParserWith allows initialization of Parser using option functions. The caller should always test for
// error on return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithOption(NewOption(
//			WithShort('a'),
//			WithLong("all"))),
//		WithOption(NewOption(
//			WithShort('f'),
//			WithLong("file"),
//			WithArity(1),
//			WithMaxOccurs(255),
//			WithDescription("file to search"))),
//		WithOption(NewOption(
//			WithLong("push"),
//			WithArity(2),
//			WithGroup("remote"))))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := &Parser{}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	if err = p.build(); err != nil {
		return nil, err
	}

	return p, nil
}

// WithOption adds an option to the table. The spec is copied - later changes to it are not seen by the Parser.
func WithOption(spec *OptionSpec) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if spec == nil {
			*err = ErrNilOption
			return
		}
		s := *spec
		parser.specs = append(parser.specs, &s)
	}
}

// WithOptions adds several options to the table
func WithOptions(specs ...OptionSpec) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		for i := range specs {
			s := specs[i]
			parser.specs = append(parser.specs, &s)
		}
	}
}
