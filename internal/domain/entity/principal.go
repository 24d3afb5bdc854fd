package entity

// Principal is the authenticated identity returned after successful credential
// verification. The authorization model is flat: any authenticated principal is
// equally privileged, so no roles are carried.
type Principal struct {
	Username string
}
