package services

// ServiceContainer bundles every service for wiring into handlers.
type ServiceContainer struct {
	AlbumService    AlbumService
	GalleryService  GalleryService
	MemberService   MemberService
	SettingsService SettingsService
	VideoService    VideoService
	NoticeService   NoticeService
	ScheduleService ScheduleService
}
