package dispatch

import (
	"fmt"
	"strconv"

	"github.com/AbdouB/clipper/internal/config"
	"github.com/AbdouB/clipper/internal/models"
	"github.com/AbdouB/clipper/internal/search"
)

const (
	fieldName = "name"
	fieldText = "text"
	fieldPath = "path"

	tintAccent = "accent"
)

var imageFilter = models.FileFilter{
	Name:       "Supported Image Types",
	Extensions: []string{"png", "jpg", "jpeg", "webp"},
}

// AddResults are shown for an empty default-mode query
func AddResults(cfg config.Config) []models.Result {
	return []models.Result{
		{
			Title: "Add text to clipboard",
			Icon:  cfg.Icon("plus"),
			Tint:  tintAccent,
			Action: models.DialogAction(cfg.AppID, CommandAddText.String(), models.Dialog{
				Title:      "Add text to clipboard",
				ButtonText: "Add",
				Fields:     clipFields(models.KindText, "", ""),
			}),
		},
		{
			Title: "Add image to clipboard",
			Icon:  cfg.Icon("plus"),
			Tint:  tintAccent,
			Action: models.DialogAction(cfg.AppID, CommandAddImage.String(), models.Dialog{
				Title:      "Add image to clipboard",
				ButtonText: "Add",
				Fields:     clipFields(models.KindImage, "", ""),
			}),
		},
	}
}

// SearchResults lists every clip whose name matches the query, text clips
// first, each collection in store order. An empty default-mode query yields
// the add entries and ignores the clipboard entirely.
func SearchResults(cfg config.Config, query search.Query, clipboard *models.Clipboard) []models.Result {
	if query.Mode == search.ModeDefault && query.IsEmpty() {
		return AddResults(cfg)
	}

	results := []models.Result{}
	for _, clip := range clipboard.TextClips {
		if search.Matches(clip.Name, query.SearchText) {
			results = append(results, clipResult(cfg, query.Mode, models.KindText, clip.ID, clip.Name, clip.Text))
		}
	}
	for _, clip := range clipboard.ImageClips {
		if search.Matches(clip.Name, query.SearchText) {
			results = append(results, clipResult(cfg, query.Mode, models.KindImage, clip.ID, clip.Name, clip.Path))
		}
	}
	return results
}

// clipResult shapes one clip for the given mode. content is the text of a
// text clip or the path of an image clip.
func clipResult(cfg config.Config, mode search.Mode, kind models.ClipKind, id int, name, content string) models.Result {
	args := []string{strconv.Itoa(id)}

	description := content
	if kind == models.KindImage {
		description = "Image"
	}

	switch mode {
	case search.ModeEdit:
		title := "Edit Text Clip"
		if kind == models.KindImage {
			title = "Edit Image Clip"
		}
		return models.Result{
			Title:       fmt.Sprintf("Edit %s", name),
			Description: description,
			Icon:        cfg.Icon("pencil"),
			Tint:        tintAccent,
			Action: models.DialogAction(cfg.AppID, editCommand(kind).String(), models.Dialog{
				Title:      title,
				ButtonText: "Save",
				Fields:     clipFields(kind, name, content),
			}, args...),
		}
	case search.ModeDelete:
		return models.Result{
			Title:       fmt.Sprintf("Delete %s", name),
			Description: description,
			Icon:        cfg.Icon("trash"),
			Tint:        tintAccent,
			Action:      models.RunCommandAction(cfg.AppID, deleteCommand(kind).String(), args...),
		}
	case search.ModeDefault:
		if kind == models.KindText {
			return models.Result{
				Title:       name,
				Description: description,
				Icon:        cfg.Icon("copy"),
				Tint:        tintAccent,
				Action:      models.CopyTextAction(content),
			}
		}
		action := models.RunCommandAction(cfg.AppID, CommandCopyImage.String(), args...)
		if cfg.HostCopiesImages {
			action = models.CopyImageAction(content)
		}
		// the image itself is the icon
		return models.Result{
			Title:       name,
			Description: description,
			Icon:        content,
			Action:      action,
		}
	}
	panic(fmt.Sprintf("dispatch: unhandled mode %d", int(mode)))
}

// clipFields builds the dialog fields for a clip kind, pre-filled with
// the given values
func clipFields(kind models.ClipKind, name, content string) []models.Field {
	fields := []models.Field{{
		ID:           fieldName,
		Type:         models.FieldInput,
		Title:        "Name",
		Description:  "The name of the item to add to clipboard",
		DefaultValue: name,
	}}

	if kind == models.KindImage {
		return append(fields, models.Field{
			ID:           fieldPath,
			Type:         models.FieldFilePicker,
			Title:        "Path",
			Description:  "The image file path",
			DefaultValue: content,
			Filters:      []models.FileFilter{imageFilter},
		})
	}
	return append(fields, models.Field{
		ID:           fieldText,
		Type:         models.FieldInput,
		Title:        "Text",
		Description:  "The text to add to clipboard",
		DefaultValue: content,
	})
}

// contentField is the form field holding a clip's content
func contentField(kind models.ClipKind) string {
	if kind == models.KindImage {
		return fieldPath
	}
	return fieldText
}
