package model

// User documents the wire shape of a stored user record. The uid is
// assigned by the client at creation time; the server never generates one.
//
// The create endpoint does not validate bodies against this shape: any
// well-formed JSON object is stored as-is. Stored documents additionally
// carry a "deleted" flag that only the listing route reads and only an
// external process writes.
type User struct {
	UID      string         `json:"uid" bson:"uid"`
	Username string         `json:"username" bson:"username"`
	Stocks   map[string]int `json:"stocks" bson:"stocks"`
	Bal      float64        `json:"bal" bson:"bal"`
	Rank     int            `json:"rank" bson:"rank"`
	Pfp      string         `json:"pfp" bson:"pfp"`
	Inv      []string       `json:"inv" bson:"inv"`
	Equipped []string       `json:"equipped" bson:"equipped"`
	Deleted  bool           `json:"deleted,omitempty" bson:"deleted"`
}
