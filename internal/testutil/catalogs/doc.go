// Package catalogs provides test infrastructure for catalog documents.
// It writes JSON catalogs into a per-test temporary directory so loader and
// command tests never depend on files checked into the repository.
//
// # Basic Usage
//
//	path := catalogs.NewBuilder(t).
//		WithFixture(catalogs.FixtureElectronics).
//		WriteFile()
//
//	categories, err := catalog.LoadCategories(ctx, path)
//
// # Custom Categories
//
//	path := catalogs.NewBuilder(t).
//		WithCategory("Books", "All kinds of books",
//			catalogs.Product("Dune", "Frank Herbert", 990, 3)).
//		WithBareCategory("Empty", "No products key at all").
//		WriteFile()
//
// # Malformed Documents
//
// WithRawCategory accepts any value, which makes it easy to drop required
// keys or use the wrong types:
//
//	path := catalogs.NewBuilder(t).
//		WithRawCategory(map[string]any{"name": "Books"}).
//		WriteFile()
package catalogs
