package domain

// DocumentType classifies a travel document.
type DocumentType string

const (
	DocumentTransport DocumentType = "transport"
	DocumentStay      DocumentType = "stay"
	DocumentActivity  DocumentType = "activity"
)

// Valid reports whether t is one of the three known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTransport, DocumentStay, DocumentActivity:
		return true
	}
	return false
}

// Document is a booking reference or link attached to a trip,
// e.g. a flight confirmation or hotel reservation.
type Document struct {
	ID       int64
	TripID   int64
	Type     DocumentType
	Title    string
	Subtitle string
	Link     string
}
