// camcopy: Backup Tesla dashcam clips from removable drives.
package main

// The fixed TeslaCam layout. Every source volume and the destination mirror
// exactly this shape; nothing here is configurable at runtime.
const (
	rootFolder    = "TeslaCam"
	clipExtension = ".mp4"
	drivePrefix   = "TESLADRIVE"
)

// clipSubdirs are the clip folders under rootFolder, in processing order.
var clipSubdirs = []string{
	"RecentClips",
	"SavedClips",
	"SentryClips",
}
