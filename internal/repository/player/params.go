package player

type SetConfigParams struct {
	PlayerID string
	Config   Config
}

type SetControlTokenParams struct {
	PlayerID string
	Token    string
}
