package model

const (
	BackendGCS = "gcs"
	BackendS3  = "s3"

	CopyToolGsutil = "gsutil"
	CopyToolAPI    = "api"
)

type AppConfig struct {
	Backend string      `mapstructure:"backend"`
	GCS     GCSConfig   `mapstructure:"gcs"`
	S3      S3Config    `mapstructure:"s3"`
	Mount   MountConfig `mapstructure:"mount"`
	Copy    CopyConfig  `mapstructure:"copy"`
	Log     LogConfig   `mapstructure:"log"`
}

type GCSConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	AccessToken     string `mapstructure:"access_token"`
	Endpoint        string `mapstructure:"endpoint"`
}

type S3Config struct {
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

type MountConfig struct {
	Helper       string `mapstructure:"helper"`
	ImplicitDirs bool   `mapstructure:"implicit_dirs"`
	// UnmountTools are tried in order, each a program followed by its flags.
	UnmountTools []string `mapstructure:"unmount_tools"`
}

type CopyConfig struct {
	Tool string `mapstructure:"tool"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

// CopyPair maps one source object name to its destination name.
type CopyPair struct {
	Src  string `yaml:"src"`
	Dest string `yaml:"dest"`
}

// CopyManifest is the yaml input of the copy command.
type CopyManifest struct {
	SrcBucket  string     `yaml:"src_bucket"`
	DestBucket string     `yaml:"dest_bucket"`
	Objects    []CopyPair `yaml:"objects"`
}

// MissingReport lists the source names that could not be copied.
type MissingReport struct {
	SrcBucket  string   `yaml:"src_bucket"`
	DestBucket string   `yaml:"dest_bucket"`
	Missing    []string `yaml:"missing"`
}

// Names splits the manifest into parallel source and destination lists.
func (m *CopyManifest) Names() (src, dest []string) {
	src = make([]string, len(m.Objects))
	dest = make([]string, len(m.Objects))
	for i, o := range m.Objects {
		src[i] = o.Src
		dest[i] = o.Dest
	}
	return src, dest
}
