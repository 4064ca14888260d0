package simulator

// SetMaxTextLength lowers the TextEntry bound so tests need not allocate
// gigabytes.
func SetMaxTextLength(k *Keyboard, n int) { k.maxText = n }
