package domain

// Confidence tells whether the classifier separated name from address by
// pattern matching or had to fall back to line positions.
type Confidence string

const (
	ConfidenceResolved Confidence = "resolved"
	ConfidenceFallback Confidence = "fallback"
)

// ClassificationResult is the classifier's best-effort reading of a label.
// Name and Address are never empty; when nothing usable was recognized they
// hold UnidentifiedName and UnidentifiedAddress.
type ClassificationResult struct {
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	Confidence Confidence `json:"confidence"`
}

// Recipient converts the result into a fresh RecipientData.
func (c ClassificationResult) Recipient() RecipientData {
	return RecipientData{Name: c.Name, Address: c.Address}
}
