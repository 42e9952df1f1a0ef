package gesture

// Primary picks the one touch that drives a drag. Once the tracked touch
// lifts, no other finger is adopted until every touch has been released,
// so two fingers never feed the same stroke.
type Primary[ID comparable] struct {
	id       ID
	tracking bool
	lost     bool
}

// Pick returns the primary touch among the currently pressed ids. ok is
// false when there is none, which the caller treats as pointer up.
func (p *Primary[ID]) Pick(ids []ID) (id ID, ok bool) {
	if p.tracking {
		for _, v := range ids {
			if v == p.id {
				return p.id, true
			}
		}
		p.tracking = false
		p.lost = len(ids) > 0
		return id, false
	}
	if len(ids) == 0 {
		p.lost = false
		return id, false
	}
	if p.lost {
		return id, false
	}
	p.id = ids[0]
	p.tracking = true
	return p.id, true
}
