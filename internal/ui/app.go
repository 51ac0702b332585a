package ui

import (
	"fmt"
	"log"

	"doodleboard/internal/config"
	"doodleboard/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

func RunApp(cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	board := NewBoardWidget(cfg)
	board.OnPromptText = func(commit func(string)) {
		promptText(myWindow, commit)
	}

	toolbar := NewToolbar(board, myWindow, func() {
		exportDialog(myWindow, board, cfg)
	})
	board.OnChanged = toolbar.Update

	bindShortcuts(myWindow.Canvas(), board)

	content := container.NewBorder(toolbar.Object(), board.StatusBar(), nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

// shortcutBinder is satisfied by fyne.Canvas and fyne.ShortcutHandler.
type shortcutBinder interface {
	AddShortcut(shortcut fyne.Shortcut, handler func(shortcut fyne.Shortcut))
}

func bindShortcuts(c shortcutBinder, board *BoardWidget) {
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		board.Undo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		board.Redo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.Key0, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		board.ResetZoom()
	})
}

// promptText asks for a line of text. Cancelling commits "".
func promptText(win fyne.Window, commit func(string)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Enter text")
	items := []*widget.FormItem{widget.NewFormItem("Text", entry)}
	d := dialog.NewForm("Add Text", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			commit("")
			return
		}
		commit(entry.Text)
	}, win)
	d.Show()
	win.Canvas().Focus(entry)
}

func exportDialog(win fyne.Window, board *BoardWidget, cfg *config.Config) {
	shapes := board.Shapes()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[EXPORT] Error closing writer: %v", err)
			}
		}()

		if err := export.PDF(writer, shapes, export.Options{Background: cfg.Background}); err != nil {
			log.Printf("[EXPORT] %s: %v", writer.URI(), err)
			dialog.ShowError(fmt.Errorf("export %s: %w", writer.URI().Name(), err), win)
			return
		}
		board.SetStatus(fmt.Sprintf("Exported %d shapes to %s", len(shapes), writer.URI().Name()))
	}, win)
	d.SetFileName("board.pdf")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}
