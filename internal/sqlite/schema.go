package sqlite

// Schema DDL. position orders the collection; edits keep it, appends take
// the next value.
const (
	createMenuItems = `CREATE TABLE menu_items (
    item_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL UNIQUE,
    dish_name TEXT NOT NULL,
    description TEXT NOT NULL,
    price REAL NOT NULL,
    course TEXT NOT NULL
);`

	createCourseIndex = `CREATE INDEX idx_menu_items_course ON menu_items(course);`
)

// schemaStatements lists the DDL executed on Attach, in order.
var schemaStatements = []string{
	createMenuItems,
	createCourseIndex,
}
