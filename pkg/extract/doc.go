// Package extract turns organizational-chart documents into company records.
//
// # Client
//
// [Client] is the caller side: it posts a file to an extraction server's
// /upload endpoint and returns the records from the reply. It does not
// retry and does not re-check the file type; failures come back as
// [*UploadError] whose message is meant to be shown to the user as is.
//
//	c, _ := extract.NewClient("http://127.0.0.1:5000")
//	res, err := c.Upload(ctx, "structure.pdf", f)
//
// # Service
//
// [Service] is the server side. It reads PDF text locally, asks a [Model]
// to turn text or an image into a JSON array of companies, cleans that
// array with [ParseCompanies] and recomputes levels. When a document holds
// no usable text, or no model is configured, it answers with
// [company.FallbackSample] instead. Model results are cached by document
// hash.
package extract
