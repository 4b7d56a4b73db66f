package commands

import (
	"fmt"

	"tabuddy/pkg/model"
	"tabuddy/pkg/storage"
)

// Result describes the outcome of a dispatched request.
type Result struct {
	Feedback string
}

// Dispatch executes a request against the manager. Mutating requests
// commit the versioned address book and save through the store only
// after the mutation succeeds, so failed commands never pollute the
// undo history. A nil store skips persistence.
func Dispatch(mgr *model.Manager, store storage.Store, req Request) (Result, error) {
	switch r := req.(type) {
	case AddPerson:
		if mgr.HasEmail(r.Person) {
			return Result{}, fmt.Errorf("%s: %w", r.Person.Email(), model.ErrDuplicateEmail)
		}
		if err := mgr.AddPerson(r.Person); err != nil {
			return Result{}, err
		}
		if err := commitAndSave(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("New person added: %s", r.Person)}, nil

	case DeletePerson:
		p, err := resolve(mgr, r.Name)
		if err != nil {
			return Result{}, err
		}
		if err := mgr.DeletePerson(p); err != nil {
			return Result{}, err
		}
		if err := commitAndSave(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("Deleted person: %s", p.Name())}, nil

	case EditPerson:
		target, err := resolve(mgr, r.Name)
		if err != nil {
			return Result{}, err
		}
		if !target.SameEmail(r.Edited) && mgr.HasEmail(r.Edited) {
			return Result{}, fmt.Errorf("%s: %w", r.Edited.Email(), model.ErrDuplicateEmail)
		}
		if err := mgr.SetPerson(target, r.Edited); err != nil {
			return Result{}, err
		}
		if err := commitAndSave(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("Edited person: %s", r.Edited)}, nil

	case AddAssignment:
		p, err := resolve(mgr, r.Name)
		if err != nil {
			return Result{}, err
		}
		if err := mgr.AddAssignment(p, r.Assignment); err != nil {
			return Result{}, err
		}
		if err := commitAndSave(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("New assignment added: %s", r.Assignment)}, nil

	case AddAssignmentToAll:
		if err := mgr.AddAllAssignments(mgr.FilteredPersons(), r.Assignment); err != nil {
			return Result{}, err
		}
		if err := commitAndSave(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("Assignment added to all listed persons: %s", r.Assignment)}, nil

	case DeleteAssignment:
		p, err := resolve(mgr, r.Name)
		if err != nil {
			return Result{}, err
		}
		if err := mgr.DeleteAssignment(p, r.Assignment); err != nil {
			return Result{}, err
		}
		if err := commitAndSave(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("Deleted assignment: %s", r.Assignment.Description)}, nil

	case MarkAssignment:
		p, err := resolve(mgr, r.Name)
		if err != nil {
			return Result{}, err
		}
		if err := mgr.MarkAssignment(p, r.Assignment); err != nil {
			return Result{}, err
		}
		if err := commitAndSave(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("Marked assignment as done: %s", r.Assignment.Description)}, nil

	case CleanAssignments:
		removed := mgr.CleanAssignments(r.Cutoff)
		if err := commitAndSave(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("Removed %d past-due assignment(s)", removed)}, nil

	case SelectPerson:
		p, err := resolve(mgr, r.Name)
		if err != nil {
			return Result{}, err
		}
		if err := mgr.SetActiveAssignmentList(p); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf("Showing assignments for: %s", p.Name())}, nil

	case FindPersons:
		mgr.UpdateFilteredPersonList(model.NameContainsKeywords(r.Keywords))
		return Result{Feedback: fmt.Sprintf("%d persons listed", len(mgr.FilteredPersons()))}, nil

	case ListPersons:
		mgr.UpdateFilteredPersonList(model.ShowAllPersons)
		return Result{Feedback: "Listed all persons"}, nil

	case Undo:
		if err := mgr.Undo(); err != nil {
			return Result{}, err
		}
		if err := save(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: "Undo success!"}, nil

	case Redo:
		if err := mgr.Redo(); err != nil {
			return Result{}, err
		}
		if err := save(mgr, store); err != nil {
			return Result{}, err
		}
		return Result{Feedback: "Redo success!"}, nil

	default:
		return Result{}, fmt.Errorf("unknown request %T", req)
	}
}

func resolve(mgr *model.Manager, name model.Name) (model.Person, error) {
	p, ok := mgr.FindPerson(name)
	if !ok {
		return model.Person{}, fmt.Errorf("%s: %w", name, model.ErrPersonNotFound)
	}
	return p, nil
}

func commitAndSave(mgr *model.Manager, store storage.Store) error {
	mgr.Commit()
	return save(mgr, store)
}

func save(mgr *model.Manager, store storage.Store) error {
	if store == nil {
		return nil
	}
	return store.Save(mgr.AddressBook())
}
