package model

// Program is a single EPG entry on a channel.
type Program struct {
	ProgramID    string `json:"programId"`
	AssetID      string `json:"assetId"`
	ChannelID    string `json:"channelId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	VodAvailable bool   `json:"vodAvailable,omitempty"`
	Catchup      bool   `json:"catchup,omitempty"`
}

// ChannelEPG is one page of program listings for a channel.
type ChannelEPG struct {
	ChannelID  string    `json:"channelId"`
	Programs   []Program `json:"programs"`
	TotalCount int       `json:"totalHitsAllChannels,omitempty"`
}
