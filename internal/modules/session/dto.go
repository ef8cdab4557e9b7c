package session

type OpenSessionRequest struct {
	RoomID    string  `json:"roomId" binding:"required"`
	BookingID *string `json:"bookingId"`
}

type AddSongRequest struct {
	SongID  string `json:"songId" binding:"required"`
	AddedBy string `json:"addedBy" binding:"required"`
}
