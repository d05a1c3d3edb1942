// Package document classifies uploaded organizational-chart documents and
// reads what can be read from them locally.
//
// A [Document] is created with [Open] from a filename and the uploaded
// bytes. The extension must be one of pdf, png, jpg or jpeg, and the sniffed
// content type must agree with it: a PNG renamed to .pdf is rejected.
//
// PDF text is extracted with [Document.Text]. Images have no local text;
// they are handed to a vision model as a data URL from [Document.DataURL].
package document
