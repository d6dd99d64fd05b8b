package channels

import "github.com/reusee/weave/formats"

// articlePatch binds a trigger segment to the article segment before it.
type articlePatch struct {
	article int
	// formatter state at insertion, so rewrites keep the article's capitalization
	formatter *formats.Formatter
}

// InsertArticle appends an article segment rendered in consonant form, then a
// new current segment that triggers re-resolution of the article on every write.
func (c *Channel) InsertArticle() {
	snapshot := c.formatter.Clone()
	form := c.format.Articles.ConsonantForm
	c.formatter.Format(form, c.format, formats.IsArticle)

	article := c.appendSegment(ArticleSegment)
	c.length += c.segments[article].append(
		snapshot.Format(form, c.format, formats.NoUpdate|formats.IsArticle),
	)
	trigger := c.appendSegment(PlainSegment)
	c.patches[trigger] = articlePatch{
		article:   article,
		formatter: snapshot,
	}
	c.check()
}

// resolveArticle rewrites the article bound to trigger, if any.
// Only the trigger's own content is inspected.
func (c *Channel) resolveArticle(trigger int) {
	patch, ok := c.patches[trigger]
	if !ok {
		return
	}
	articles := c.format.Articles
	form := articles.ConsonantForm
	if seg := c.segments[trigger]; seg.length > 0 &&
		articles.PrecedesVowel(seg.String(), c.format.Language) {
		form = articles.VowelForm
	}
	c.length += c.segments[patch.article].set(
		patch.formatter.Format(form, c.format, formats.NoUpdate|formats.IsArticle),
	)
}
