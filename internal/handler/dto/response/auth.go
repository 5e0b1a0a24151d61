package response

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

type APITokenResponse struct {
	Token string `json:"token"`
}
