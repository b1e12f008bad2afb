package entries

// Entry is one journal entry. Content is ciphertext: encryption and
// decryption happen at the HTTP boundary, never inside the store.
type Entry struct {
	ID      int64
	Date    string
	Content string
}
