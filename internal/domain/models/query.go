package models

// Query describes a content-provider read on the device: a provider URI and
// the projection of columns to return.
type Query struct {
	URI        string
	Projection []string
}

// Predefined queries for the three record kinds.
var (
	QuerySMS = Query{
		URI:        "content://sms",
		Projection: []string{"address", "date", "type", "body"},
	}
	QueryCallLog = Query{
		URI:        "content://call_log/calls",
		Projection: []string{"number", "date", "duration", "type"},
	}
	QueryContacts = Query{
		URI:        "content://com.android.contacts/data/phones",
		Projection: []string{"display_name", "number"},
	}
)
