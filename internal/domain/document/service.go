package document

import "context"

// DocumentService generates one-off letters for an employee. Each call
// returns the rendered PDF bytes and the deterministic download name.
type DocumentService interface {
	GenerateOfferLetter(ctx context.Context, req OfferLetterRequest) ([]byte, string, error)
	GenerateExperienceLetter(ctx context.Context, req ExperienceLetterRequest) ([]byte, string, error)
}
