package metadatarepo

type Repo interface {
	// LookupISBN resolves an ISBN for a title/author pair, "" when the
	// provider has no match.
	LookupISBN(title, author string) (string, error)
}
