package models

// Bundle keys understood by the host bridge.
const (
	KeyProxyServerInfo = "proxyServerInfo"
	KeyRemoteVideoInfo = "remoteVideoInfo"

	KeyType     = "type"
	KeyHost     = "host"
	KeyPort     = "port"
	KeyUsername = "username"
	KeyPassword = "password"

	KeyHeight = "height"
	KeyWidth  = "width"

	// KeyLegacyWidth is the key older consumers read the video width from.
	KeyLegacyWidth = KeyPort
)
