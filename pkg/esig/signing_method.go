package esig

// SigningMethod is a signing method configured on the platform.
// RequiredProperties lists the stakeholder AdditionalProperties a signer must
// carry when mandated signing rules apply to the method.
type SigningMethod struct {
	IsActive              bool              `json:"IsActive"              yaml:"IsActive"`
	Name                  string            `json:"Name"                  yaml:"Name"`
	DisplayNames          map[string]string `json:"DisplayNames"          yaml:"DisplayNames"`
	DisplayNamesInitiator map[string]string `json:"DisplayNamesInitiator" yaml:"DisplayNamesInitiator"`
	Descriptions          map[string]string `json:"Descriptions"          yaml:"Descriptions"`
	RequiredProperties    []string          `json:"RequiredProperties"    yaml:"RequiredProperties"`
}
