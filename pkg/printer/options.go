package printer

type printerOptions struct {
	styles *Styles
}

type Option func(o *printerOptions)

// WithStyles enables styled output.
func WithStyles(styles *Styles) Option {
	return func(o *printerOptions) {
		o.styles = styles
	}
}
