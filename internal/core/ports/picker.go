package ports

// ProgramPicker lists the programs a user can choose from on the manual path.
//
//go:generate mockgen -source=picker.go -destination=mocks/mock_picker.go -package=mocks
type ProgramPicker interface {
	// Dir returns the directory being listed.
	Dir() string
	// Candidates returns absolute paths ranked against query. An empty result
	// means nothing can be selected.
	Candidates(query string) ([]string, error)
}
