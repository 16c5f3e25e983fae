package constant

const (
	// Bios applied when a profile is completed without one. Each completion
	// flow passes its own default.
	DefaultLawyerBio = "Legal professional seeking to provide excellent legal services"
	DefaultClientBio = "Client seeking legal assistance"
)
