package app

import "go.trai.ch/lambdazip/internal/core/domain"

// requestMessage is the JSON request read from stdin. ExtraFiles is a
// comma-delimited list.
type requestMessage struct {
	Code           string `json:"code"`
	ExtraFiles     string `json:"extra_files"`
	OutputFilename string `json:"output_filename"`
}

func (m requestMessage) toDomain() (domain.Request, error) {
	return domain.NewRequest(m.Code, m.ExtraFiles, m.OutputFilename)
}
