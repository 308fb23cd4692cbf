package armstate

// Version identifies an architecture version, v1 through v9, used to
// gate register width and feature availability.
type Version uint8

const (
	V1 Version = iota + 1
	V2
	V3
	V4
	V5
	V6
	V6T2
	V7
	V8
	V9
)

// Feature is one bit of the immutable configuration feature set.
type Feature uint32

const (
	FeatureSWP Feature = 1 << iota
	FeatureARM26
	FeatureARM32
	FeatureMULL
	FeatureTHUMB
	FeatureTHUMB2
	FeatureENHDSP
	FeatureDSPPAIR
	FeatureJAZELLE
	FeatureMULTIPROC
	FeatureSECURITY
	FeatureVIRTUALIZATION
	FeatureARM64
	FeatureFPA
	FeatureVFP
	FeatureDREG
	Feature32DREG
	FeatureFP16
	FeatureSIMD
	FeatureMVE
)

// Profile is the ARM architecture profile.
type Profile uint8

const (
	ProfileClassic Profile = iota
	ProfileA
	ProfileR
	ProfileM
)

// JazelleLevel is the implementation level of the Jazelle extension.
type JazelleLevel uint8

const (
	JazelleNone JazelleLevel = iota
	JazelleTrivial
	JazelleFull
	JazelleJVM
	JazellePicoJava
	JazelleExtension
)

// ThumbLevel is the implementation level of the Thumb extension.
type ThumbLevel uint8

const (
	ThumbNone ThumbLevel = iota
	ThumbBasic
	ThumbTwo
)

// Config is the immutable-after-init configuration a host fills in and
// hands to core.New. It has no config-file parsing of its own; loading
// it from a file or flags is the host's job.
type Config struct {
	Version      Version
	FPVariant    string
	Features     Feature
	JazelleLevel JazelleLevel
	ThumbLevel   ThumbLevel
	Profile      Profile
	SupportedISA ISASet
}

// Has reports whether the configuration carries a given feature.
func (c Config) Has(f Feature) bool {
	return c.Features&f != 0
}

// ISASet is a bitset of supported instruction sets.
type ISASet uint8

const (
	ISAArm26 ISASet = 1 << iota
	ISAArm32
	ISAThumb
	ISAThumbEE
	ISAJazelle
	ISAArm64
)
