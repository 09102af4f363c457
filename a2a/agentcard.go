package a2a

// ProtocolVersion is the fixed A2A protocol version string this model
// implements (spec §3 "AgentCard").
const ProtocolVersion = "0.3.0"

// AgentProvider identifies the organization that operates an agent.
// Present in the upstream A2A AgentCard JSON; spec.md left the field
// as "optional provider" without a shape (see SPEC_FULL.md §3).
type AgentProvider struct {
	Organization string `json:"organization"`
	URL          string `json:"url,omitempty"`
}

// AgentCapabilities advertises which optional protocol features an
// agent supports.
type AgentCapabilities struct {
	Streaming              bool   `json:"streaming"`
	PushNotifications      bool   `json:"pushNotifications"`
	StateTransitionHistory bool   `json:"stateTransitionHistory"`
	MXPTransport           bool   `json:"mxpTransport"`
	MXPEndpoint            string `json:"mxpEndpoint,omitempty"`
}

// AgentSkill describes one capability an agent exposes.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	InputModes  []string `json:"inputModes,omitempty"`
	OutputModes []string `json:"outputModes,omitempty"`
}

// TransportInterface is an alternate endpoint/transport pair an agent
// can additionally be reached on (spec §6.5 "mirrored entry in
// additionalInterfaces").
type TransportInterface struct {
	URL       string `json:"url"`
	Transport string `json:"transport"`
}

// OAuthFlows is the minimal OAuth2 flow shape referenced by
// SecurityScheme; only the flows this model needs to round-trip are
// represented.
type OAuthFlows struct {
	AuthorizationURL string            `json:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty"`
	Scopes           map[string]string `json:"scopes,omitempty"`
}

// SecurityScheme is a tagged union over the schemes an AgentCard can
// advertise: APIKey, HTTP, OAuth2, OpenIdConnect (SPEC_FULL.md §3).
type SecurityScheme struct {
	Type             string      `json:"type"`
	Scheme           string      `json:"scheme,omitempty"`
	In               string      `json:"in,omitempty"`
	Name             string      `json:"name,omitempty"`
	Flows            *OAuthFlows `json:"flows,omitempty"`
	OpenIDConnectURL string      `json:"openIdConnectUrl,omitempty"`
}

// AgentCard is the discovery document an agent publishes describing
// itself: identity, capabilities, and skills (spec §3 "AgentCard").
type AgentCard struct {
	ProtocolVersion      string                    `json:"protocolVersion"`
	Name                 string                    `json:"name"`
	Description          string                    `json:"description"`
	URL                  string                    `json:"url"`
	Provider             *AgentProvider            `json:"provider,omitempty"`
	Version              string                    `json:"version,omitempty"`
	Capabilities         AgentCapabilities         `json:"capabilities"`
	Skills               []AgentSkill              `json:"skills"`
	DefaultInputModes    []string                  `json:"defaultInputModes"`
	DefaultOutputModes   []string                  `json:"defaultOutputModes"`
	AdditionalInterfaces []TransportInterface      `json:"additionalInterfaces,omitempty"`
	SecuritySchemes      map[string]SecurityScheme `json:"securitySchemes,omitempty"`
}

// NewAgentCard builds an AgentCard pinned to the fixed protocol
// version, with the default input/output modes spec §3 requires.
func NewAgentCard(name, description, url string) AgentCard {
	return AgentCard{
		ProtocolVersion:    ProtocolVersion,
		Name:               name,
		Description:        description,
		URL:                url,
		DefaultInputModes:  []string{"text/plain"},
		DefaultOutputModes: []string{"text/plain"},
	}
}

// WithMXPTransport marks the card as reachable over MXP at endpoint,
// mirroring the capability flag into additionalInterfaces as spec
// §6.5 requires.
func (c AgentCard) WithMXPTransport(endpoint string) AgentCard {
	c.Capabilities.MXPTransport = true
	c.Capabilities.MXPEndpoint = endpoint
	c.AdditionalInterfaces = append(c.AdditionalInterfaces, TransportInterface{
		URL:       endpoint,
		Transport: "mxp",
	})
	return c
}
