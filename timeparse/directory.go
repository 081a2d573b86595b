package timeparse

// Directory remembers each user's zone so schedule text can leave the
// zone off. Entries are only ever written by explicit registration and
// keep registration order for snapshots.
type Directory struct {
	ids  []string
	byID map[string]Zone
}

// Entry is one user's registered zone.
type Entry struct {
	UserID string
	Zone   Zone
}

func NewDirectory() *Directory {
	return &Directory{byID: make(map[string]Zone)}
}

// Register stores or overwrites the user's zone. Overwriting keeps the
// user's original position.
func (d *Directory) Register(userID string, z Zone) {
	if _, ok := d.byID[userID]; !ok {
		d.ids = append(d.ids, userID)
	}
	d.byID[userID] = z
}

func (d *Directory) Lookup(userID string) (Zone, bool) {
	z, ok := d.byID[userID]
	return z, ok
}

// All returns entries in registration order.
func (d *Directory) All() []Entry {
	out := make([]Entry, 0, len(d.ids))
	for _, id := range d.ids {
		out = append(out, Entry{UserID: id, Zone: d.byID[id]})
	}
	return out
}

func (d *Directory) Len() int {
	return len(d.ids)
}
