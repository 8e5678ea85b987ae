package hubui

// MenuItem is an entry of the bottom bar. The first hot key names its region.
type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}
