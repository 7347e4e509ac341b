// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	UnresolvedPathId Id = iota + 1
	InvalidDirectiveArgumentId
	AssetReadFailedId
	DependencyCycleId
	ConfigLoadFailedId
	InvalidConfigId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		extLinks []HttpLink  // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using a glamour style name
// ("dark", "light", "notty", ...) or a path to a style file.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	unresolvedPathIssue = &Issue{
		id: UnresolvedPathId,
		mdMsg: `
# Asset not found!

A logical path could not be matched to any file. Every search path was tried
in order, first as written, then with each registered extension, then through
the directory's package manifest and finally as ` + "`<path>/index`" + `.

## Things you can try:
- Check the spelling of the ` + "`require`" + ` argument
- Add the directory that holds the file to the search paths:
~~~
$ sprockets-chain chain --path vendor/assets application.js
~~~

- Register the file's extension if it is not ` + "`.js`" + ` or ` + "`.coffee`" + `:
~~~
$ sprockets-chain chain --ext .es6 application.js
~~~`,
		extLinks: []HttpLink{"https://github.com/rails/sprockets"},
	}

	invalidDirectiveArgumentIssue = &Issue{
		id: InvalidDirectiveArgumentId,
		mdMsg: `
# Invalid directive argument!

` + "`require_directory`" + ` and ` + "`require_tree`" + ` only accept paths relative to the
file that declares them, and every directive except ` + "`require_self`" + ` needs an
argument.

## Valid forms:
~~~js
//= require_tree .
//= require_tree ./widgets
//= require_directory ../shared
~~~`,
	}

	assetReadFailedIssue = &Issue{
		id: AssetReadFailedId,
		mdMsg: `
# Asset could not be read!

The file was found but reading it failed.

## Things you can try:
- Check the file permissions
- Make sure the path is not a broken symlink`,
	}

	dependencyCycleIssue = &Issue{
		id: DependencyCycleId,
		mdMsg: `
# Dependency cycle detected!

Two or more assets require each other. Chains still resolve (each file is
emitted once) but the order inside the cycle depends on which file is the
entry point.

## Things you can try:
- Move the shared code into a third file both can require
- Replace one side of the cycle with ` + "`require_self`" + ` ordering`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or is not valid CUE.

## Things you can try:
- Print the built-in defaults and compare:
~~~
$ sprockets-chain config dump
~~~

- Show which file is being loaded:
~~~
$ sprockets-chain config path
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	invalidConfigIssue = &Issue{
		id: InvalidConfigId,
		mdMsg: `
# Invalid configuration value!

A configuration value parsed but is not allowed.

## Allowed values:
- ` + "`output.format`" + `: ` + "`text`" + `, ` + "`json`" + ` or ` + "`toml`" + `
- ` + "`log.level`" + `: ` + "`debug`" + `, ` + "`info`" + `, ` + "`warn`" + ` or ` + "`error`" + `
- ` + "`extensions`" + `: non-empty strings such as ` + "`.js`" + ``,
	}

	issues = map[Id]*Issue{
		unresolvedPathIssue.Id():           unresolvedPathIssue,
		invalidDirectiveArgumentIssue.Id(): invalidDirectiveArgumentIssue,
		assetReadFailedIssue.Id():          assetReadFailedIssue,
		dependencyCycleIssue.Id():          dependencyCycleIssue,
		configLoadFailedIssue.Id():         configLoadFailedIssue,
		invalidConfigIssue.Id():            invalidConfigIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
