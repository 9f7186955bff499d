package xsdgen

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithMinLength sets the minimum length of generated text when no length facet applies.
func (o Options) WithMinLength(value int) Options {
	o.minLength = intOption{value: value, set: true}
	return o
}

// WithMaxLength sets the maximum length of generated text when no length facet
// applies. It also bounds pattern repetitions.
func (o Options) WithMaxLength(value int) Options {
	o.maxLength = intOption{value: value, set: true}
	return o
}

// WithDecimalScale sets the number of fraction digits of generated decimals.
func (o Options) WithDecimalScale(value int) Options {
	o.decimalScale = intOption{value: value, set: true}
	return o
}

// WithMaxDiscards sets how many exhausted draws a sample tolerates before failing.
func (o Options) WithMaxDiscards(value int) Options {
	o.maxDiscards = intOption{value: value, set: true}
	return o
}
