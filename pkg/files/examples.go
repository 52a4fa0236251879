package files

// exampleForms are written to .otdb/forms by InitProjectStructure.
var exampleForms = map[string]string{
	"mappool.yaml": `title: New mappool
inputs:
  - id: name-input
    type: text
    label: Name
    required: true
    max-length: 64
  - id: description-input
    type: text
    label: Description
    textarea: true
    max-length: 512
  - id: submit
    type: button
    label: Submit
groups:
  - name: beatmap
    count: 3
    horizontal: true
    inputs:
      - id: beatmap-id-input
        type: text
        label: Beatmap ID
        validation: uint
        required: true
      - id: slot-input
        type: text
        label: Slot
        validation: mod
        required: true
        max-length: 5
      - id: mods-input
        type: text-dropdown
        label: Mods
        options: EZ,HD,HR,DT,FM,RX,HT,NC,FL,AP,SO
        multi: true
`,
	"tournament.yaml": `title: New tournament
inputs:
  - id: name-input
    type: text
    label: Name
    required: true
    max-length: 128
  - id: abbreviation-input
    type: text
    label: Abbreviation
    required: true
    max-length: 16
  - id: link-input
    type: text
    label: Link
    max-length: 256
  - id: description-input
    type: text
    label: Description
    textarea: true
  - id: submit
    type: button
    label: Submit
groups:
  - name: staff
    count: 2
    horizontal: true
    inputs:
      - id: staff-user
        type: text-search
        label: User
        required: true
      - id: staff-roles
        type: text-dropdown
        label: Roles
        options: Referee,Streamer,Commentator,Playtester,Mappooler,Mappool assurance,Mapper,Sheeter,Host,Graphics,Admin
        multi: true
        required: true
  - name: mappool
    count: 1
    inputs:
      - id: mappool-search
        type: text-search
        label: Mappool
        multi: true
searches:
  staff-user: users
  mappool-search: mappools
`,
}
