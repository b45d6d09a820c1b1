package showcase

// CopiedMsg reports the outcome of a clipboard write.
type CopiedMsg struct {
	What string
	Text string
	Err  error
}
