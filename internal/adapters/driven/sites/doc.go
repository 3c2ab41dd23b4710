// Package sites is a SiteStore backed by the Google Sites content feed.
//
// The content feed is an Atom (GData 1.4) API. Pages are looked up by path
// with the "path" query parameter and created by posting an Atom entry whose
// content is an XHTML fragment:
//
//	<entry xmlns="http://www.w3.org/2005/Atom">
//	  <category scheme="http://schemas.google.com/g/2005#kind"
//	            term="http://schemas.google.com/sites/2008#webpage" label="webpage"/>
//	  <title>Getting started</title>
//	  <content type="xhtml"><div xmlns="http://www.w3.org/1999/xhtml">...</div></content>
//	  <link rel="http://schemas.google.com/sites/2008#parent" type="application/atom+xml" href="..."/>
//	  <pageName xmlns="http://schemas.google.com/sites/2008">Getting-started</pageName>
//	</entry>
//
// Authentication is supplied by the caller as google.golang.org/api client
// options (normally option.WithTokenSource). Requests are paced with a token
// bucket and are never retried.
package sites
