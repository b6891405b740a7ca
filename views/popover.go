package views

// Popover tracks which popover or context menu is open within one view.
// At most one is open at a time: opening a new one implicitly closes
// the previous, and a click outside closes everything.
type Popover struct {
	openKey string
}

// Open shows the popover identified by key, replacing any open one
func (p *Popover) Open(key string) { p.openKey = key }

// Toggle opens the popover, or closes it when it is already open
func (p *Popover) Toggle(key string) {
	if p.openKey == key {
		p.openKey = ""
		return
	}
	p.openKey = key
}

// CloseAll dismisses any open popover (outside click)
func (p *Popover) CloseAll() { p.openKey = "" }

// OpenKey returns the key of the open popover, or "" when none is open
func (p *Popover) OpenKey() string { return p.openKey }

// IsOpen reports whether the popover identified by key is open
func (p *Popover) IsOpen(key string) bool { return p.openKey == key && key != "" }
