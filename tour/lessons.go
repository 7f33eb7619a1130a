package tour

// Lessons returns the course in order.
//
// Every lesson leaves the users table in the state the next
// lesson expects, so the course is meant to be run front to
// back against a fresh keyspace. Expected outputs only assert
// single-partition reads because the row order of unrestricted
// selects depends on the cluster's token distribution.
func Lessons() []Lesson {
	return []Lesson{
		{
			Number:  1,
			Title:   "Tables",
			Summary: "Create the users table this course works with.",
			Steps: []Step{
				{
					Title: "create the users table",
					Stmt: `CREATE TABLE IF NOT EXISTS users (
						id text PRIMARY KEY,
						name text,
						age int
					)`,
				},
				{
					Title: "start from an empty table",
					Stmt:  `TRUNCATE users`,
				},
				{
					Title:  "an empty table renders as the placeholder",
					Stmt:   `SELECT id, name, age FROM users WHERE id = 'nobody'`,
					Render: true,
					Expect: "Nothing",
				},
			},
		},
		{
			Number:  2,
			Title:   "Inserting rows",
			Summary: "Insert rows with literal values.",
			Steps: []Step{
				{
					Title: "insert jon",
					Stmt:  `INSERT INTO users (id, name, age) VALUES ('123', 'jon', 32)`,
				},
				{
					Title: "insert mary",
					Stmt:  `INSERT INTO users (id, name, age) VALUES ('456', 'mary', 25)`,
				},
				{
					Title: "your turn: insert rita, id 789, age 41",
					Stmt:  `INSERT INTO users (id, name, age) VALUES (` + FillIn + `)`,
				},
			},
		},
		{
			Number:  3,
			Title:   "Selecting rows",
			Summary: "Read rows back and inspect them as a table.",
			Steps: []Step{
				{
					Title:  "select one row by primary key",
					Stmt:   `SELECT id, name, age FROM users WHERE id = '123'`,
					Render: true,
					Expect: "" +
						"+---+----+---+\n" +
						"|id |name|age|\n" +
						"+---+----+---+\n" +
						"|123|jon | 32|\n" +
						"+---+----+---+",
				},
				{
					Title:  "select the whole table",
					Stmt:   `SELECT id, name, age FROM users`,
					Render: true,
				},
			},
		},
		{
			Number:  4,
			Title:   "Parameterized statements",
			Summary: "Bind values instead of splicing them into the CQL text.",
			Steps: []Step{
				{
					Title: "insert with bound values",
					Stmt:  `INSERT INTO users (id, name, age) VALUES (?, ?, ?)`,
					Args:  []any{"901", "Anastasios", 28},
				},
				{
					Title:  "select with a bound key",
					Stmt:   `SELECT id, name, age FROM users WHERE id = ?`,
					Args:   []any{"901"},
					Render: true,
					Expect: "" +
						"+---+----------+---+\n" +
						"|id |name      |age|\n" +
						"+---+----------+---+\n" +
						"|901|Anastasios| 28|\n" +
						"+---+----------+---+",
				},
				{
					Title:  "your turn: select mary with a bound key",
					Stmt:   `SELECT id, name, age FROM users WHERE ` + FillIn,
					Render: true,
				},
			},
		},
		{
			Number:  5,
			Title:   "JSON",
			Summary: "Insert and read rows in JSON form.",
			Steps: []Step{
				{
					Title: "insert a row from a JSON document",
					Stmt:  `INSERT INTO users JSON '{"id": "777", "name": "lex", "age": 51}'`,
				},
				{
					Title:  "read the row back",
					Stmt:   `SELECT id, name, age FROM users WHERE id = '777'`,
					Render: true,
					Expect: "" +
						"+---+----+---+\n" +
						"|id |name|age|\n" +
						"+---+----+---+\n" +
						"|777|lex | 51|\n" +
						"+---+----+---+",
				},
				{
					Title:  "read the row back as JSON",
					Stmt:   `SELECT JSON id, name, age FROM users WHERE id = '777'`,
					Render: true,
				},
			},
		},
	}
}

// LessonByNumber returns the lesson with the passed number.
func LessonByNumber(number int) (Lesson, bool) {
	for _, lesson := range Lessons() {
		if lesson.Number == number {
			return lesson, true
		}
	}
	return Lesson{}, false
}
