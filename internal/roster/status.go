package roster

import "github.com/iliyamo/bus-seat-roster/internal/model"

// NormalizeStatus maps a free-text payment token to a status.  Tokens
// containing a paid keyword are PAID; everything else, including tokens
// that match no keyword at all, is PENDING.
func (v *Vocabulary) NormalizeStatus(token string) model.PaymentStatus {
	if containsAny(token, v.Paid) {
		return model.StatusPaid
	}
	return model.StatusPending
}

// IsStatusKeyword reports whether token contains any paid or pending
// keyword.  The line parser uses it to tell an explicit "pending" apart
// from an unrelated word that merely normalises to PENDING.
func (v *Vocabulary) IsStatusKeyword(token string) bool {
	return containsAny(token, v.Paid) || containsAny(token, v.Pending)
}
