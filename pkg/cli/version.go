package cli

// Version is the semantic version of this build. Release builds override it with
// -ldflags "-X github.com/Fepozopo/unborder/pkg/cli.Version=x.y.z".
var Version = "0.1.0"
