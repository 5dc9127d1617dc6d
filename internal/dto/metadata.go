package dto

// MachineMetadata is the document shape of a YAML (or JSON) machine file.
// It uses "mapstructure" tags so it can be decoded from a generic map.
type MachineMetadata struct {
	Start       string               `json:"start" mapstructure:"start"`
	States      map[string]string    `json:"states" mapstructure:"states"`
	Alphabet    []string             `json:"alphabet" mapstructure:"alphabet"`
	Transitions []TransitionMetadata `json:"transitions" mapstructure:"transitions"`
}

// TransitionMetadata is one row of the transition list.
type TransitionMetadata struct {
	From  string `json:"from" mapstructure:"from"`
	Read  string `json:"read" mapstructure:"read"`
	To    string `json:"to" mapstructure:"to"`
	Write string `json:"write" mapstructure:"write"`
	Move  string `json:"move" mapstructure:"move"`
}
