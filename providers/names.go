package providers

const (
	// Identifier for api.hackertarget.com.
	NameHackerTarget = "hackertarget"

	// Identifier for api.ip.sb.
	NameIPSB = "ipsb"

	// Identifier for ip-api.com.
	NameIPAPICom = "ipapicom"

	// Identifier for reallyfreegeoip.org.
	NameReallyFreeGeoIP = "reallyfreegeoip"

	// Identifier for freeipapi.com.
	NameFreeIPAPI = "freeipapi"

	// Identifier for ipgeolocation.io.
	NameIPGeolocation = "ipgeolocation"
)
