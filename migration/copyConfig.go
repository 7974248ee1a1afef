package migration

import "github.com/gjutils/gjutil/progress"

// CopyConfig describes one cross-bucket copy. DestFilenames[i] is the name
// SrcFilenames[i] gets in DestBucket.
type CopyConfig struct {
	SrcBucket     string
	SrcFilenames  []string
	DestBucket    string
	DestFilenames []string

	Copier   ObjectCopier
	Reporter progress.Reporter
}
