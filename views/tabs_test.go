package views

import (
	"testing"

	"entitled/fixtures"
)

func TestTabBarSingleActive(t *testing.T) {
	b := NewTabBar(fixtures.Default().Tabs())

	if a := b.Active(); a == nil || a.ID != "1" {
		t.Fatalf("Active() = %+v", a)
	}

	b.Activate("2")
	active := 0
	for _, tab := range b.Tabs() {
		if tab.IsActive {
			active++
			if tab.ID != "2" {
				t.Errorf("wrong tab active: %s", tab.ID)
			}
		}
	}
	if active != 1 {
		t.Errorf("expected exactly 1 active tab, got %d", active)
	}

	if b.Activate("missing") {
		t.Error("activating an unknown tab should fail")
	}
}

func TestTabBarAdd(t *testing.T) {
	b := NewTabBar(fixtures.Default().Tabs())

	tab := b.Add("46 Main Street", "3")
	if tab.ID == "" {
		t.Error("new tab has no id")
	}
	if tab.Order != 3 {
		t.Errorf("new tab order = %d, expected 3", tab.Order)
	}
	if !tab.IsClosable {
		t.Error("new tab should be closable")
	}
	if len(b.Tabs()) != 3 {
		t.Errorf("expected 3 tabs, got %d", len(b.Tabs()))
	}
}

func TestTabBarCloseActivatesFirstRemaining(t *testing.T) {
	b := NewTabBar(fixtures.Default().Tabs())

	if !b.Close("1") { // the active tab
		t.Fatal("close failed")
	}
	if a := b.Active(); a == nil || a.ID != "2" {
		t.Errorf("expected first remaining tab active, got %+v", a)
	}
}

func TestTabBarKeepsLastTab(t *testing.T) {
	b := NewTabBar(fixtures.Default().Tabs())
	b.Close("2")

	if b.Close("1") {
		t.Error("closing the last tab should fail")
	}
	if len(b.Tabs()) != 1 {
		t.Errorf("expected 1 tab, got %d", len(b.Tabs()))
	}
}

func TestPopoverSingleOpen(t *testing.T) {
	var p Popover

	p.Open("contact-1")
	if !p.IsOpen("contact-1") {
		t.Fatal("popover not open")
	}

	p.Open("contact-2")
	if p.IsOpen("contact-1") {
		t.Error("opening a popover should close the previous one")
	}
	if !p.IsOpen("contact-2") {
		t.Error("second popover not open")
	}

	p.CloseAll()
	if p.OpenKey() != "" {
		t.Error("outside click should close everything")
	}

	p.Toggle("contact-3")
	p.Toggle("contact-3")
	if p.IsOpen("contact-3") {
		t.Error("toggle twice should close")
	}
}
