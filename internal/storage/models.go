package storage

// Document is the on-disk layout of LocalStorage: slot key to raw string value.
type Document struct {
	Items map[string]string `json:"items"`
}
