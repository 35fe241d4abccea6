/*
Package flow derives and walks the navigation graph of a form.

At edit time, Build turns the ordered pages of a form into a directed graph by
filling each page's NextPageID and PrevPageID. Conditional branches claim their
targets first; remaining pages are chained in order. Every page has at most one
incoming edge and the entry page has none, so the graph never cycles.

At fill time, Evaluate applies a page's ConditionalLogic to the answers collected
so far, and Next combines it with the derived edges to pick the following page.
History keeps the pages left behind for back navigation.

Lint, Normalize and MissingRequired are optional helpers for editors and fillers.
Nothing in this package blocks, performs I/O or keeps global state.
*/
package flow
