package handlers

// AppHandlers bundles every handler for route registration.
// FileHandler is nil unless local storage is configured.
type AppHandlers struct {
	AlbumHandler    *AlbumHandler
	GalleryHandler  *GalleryHandler
	MemberHandler   *MemberHandler
	SettingsHandler *SettingsHandler
	VideoHandler    *VideoHandler
	NoticeHandler   *NoticeHandler
	ScheduleHandler *ScheduleHandler
	FileHandler     *FileHandler
}
