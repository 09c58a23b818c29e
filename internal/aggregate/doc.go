// Package aggregate joins the review ledger with the content catalog and
// derives the per-content numbers the views need: average ratings and the
// followed-friend reviewer strips. Nothing here is cached or materialized;
// every call recomputes from a fresh store read, which is cheap at the
// dataset sizes this application handles.
package aggregate
