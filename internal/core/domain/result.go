package domain

// Result is the record emitted after a successful packaging run.
type Result struct {
	Code               string `json:"code"`
	OutputFilename     string `json:"output_filename"`
	OutputBase64SHA256 string `json:"output_base64sha256"`
}
