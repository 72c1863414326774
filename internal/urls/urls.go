package urls

// Vendor URLs referenced in CLI output and authorization instructions.

// ConsumerPortal is where the user enters the PIN to authorize the app
// (My Apps, Add Application, enter PIN, Authorize).
const ConsumerPortal = "https://www.ecobee.com/consumerportal/index.html"

// DeveloperPortal is where a developer API key is created.
const DeveloperPortal = "https://www.ecobee.com/developers/"

// APIDocs is the vendor API documentation root.
const APIDocs = "https://www.ecobee.com/home/developer/api/documentation/v1/index.shtml"

// AuthDocs documents the PIN authorization flow this client implements.
const AuthDocs = "https://www.ecobee.com/home/developer/api/documentation/v1/auth/pin-api-authorization.shtml"
