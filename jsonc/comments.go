package jsonc

import p "github.com/dhamidi/jcomb/combinator"

var (
	// comment matches "//" up to and including the next newline and yields
	// the text in between. A comment on the last line needs its newline.
	comment = p.SkipLeft(
		p.Literal("//"),
		p.SkipRight(p.Map(p.Many(p.NoneOf("\n")), p.RunesToString), p.Literal("\n")),
	)

	comments = p.WithSpace(p.Many(p.WithSpace(comment)))
)

// CommentParser matches a single line comment.
func CommentParser() p.Parser[string] { return comment }

// CommentsParser matches any mix of white space and line comments.
func CommentsParser() p.Parser[[]string] { return comments }

// WithComments lets pp be surrounded by white space and line comments.
func WithComments[T any](pp p.Parser[T]) p.Parser[T] {
	return withComments(pp)
}

func withComments[T any](pp p.Parser[T]) p.Parser[T] {
	return p.SkipRight(p.SkipLeft(comments, pp), comments)
}
