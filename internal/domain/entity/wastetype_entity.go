package entity

// WasteType is a category of waste the municipality collects
// (organic, recyclable, hazardous, ...).
type WasteType struct {
	ID          string
	Name        string
	Description string
}
